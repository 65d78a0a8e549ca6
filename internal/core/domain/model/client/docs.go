// Package client provides the Client aggregate: the customers allowed to place orders.
package client
