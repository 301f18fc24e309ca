// Package prometheus provides the service metrics collector.
//
// The collector never touches the global default registry; callers build a
// registry, pass it in and serve it through Handler.
package prometheus
