// Package rhub provides an HTTP client for the r-hub R versions API.
package rhub
