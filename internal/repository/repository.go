// Package repository handles all interactions with the document store.
//
// It owns the query documents and driver calls for the services, bookings
// and users collections, the dual-identifier resolution used to address a
// Service, and the translation of search parameters into a query plan.
package repository
