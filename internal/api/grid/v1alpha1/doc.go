// Package v1alpha1 defines the GridService gRPC API: request and response
// messages, the service descriptor, and a client.
//
// Messages travel as JSON under the "json" content-subtype. The codec is
// registered when the package is imported, and clients built with
// NewGridServiceClient select it on every call.
package v1alpha1
