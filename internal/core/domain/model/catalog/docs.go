// Package catalog holds the read models of menu items and restaurants.
//
// From the perspective of the order lifecycle core both are external,
// read-only collaborators: the core snapshots their attributes into orders
// at creation time and never writes them back. Menu management, discovery
// and ranking live in other services.
package catalog
