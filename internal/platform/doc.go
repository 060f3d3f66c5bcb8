// Package platform contains OS integration and network glue used by the
// front-ends: filesystem helpers, reveal in file manager, thumbnail fetching
// and native playlist listing.
package platform
