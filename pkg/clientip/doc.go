// Package clientip resolves the address of the client that sent a request.
//
// Behind a reverse proxy the TCP peer is the proxy, so FromRequest consults
// the forwarding headers it is told to trust before falling back to
// RemoteAddr. Only pass headers your proxy overwrites; any other header can
// be set by the client.
//
//	r.Use(clientip.Middleware(clientip.DefaultHeaders...))
//
//	func handle(w http.ResponseWriter, r *http.Request) {
//		ip := clientip.FromContext(r.Context())
//	}
//
// Addresses are normalized: IPv4-mapped IPv6 addresses are unmapped and zones
// are dropped. An empty string means no valid address was found.
package clientip
