// Package ports defines the interfaces between layers. DraftService is
// implemented by the application layer and called by the HTTP handlers;
// TodoStore is implemented by the outbound ACL adapter and called by the
// application layer.
package ports
