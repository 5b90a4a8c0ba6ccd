// Package handlers groups the HTTP handler packages, one per domain
// area. Each subpackage exposes a Handler with RegisterRoutes.
package handlers
