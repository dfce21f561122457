// Package services holds domain logic that spans aggregates.
//
// OrderPlacer combines accounts and the merchant's menu into a new Order,
// snapshotting each resolved dish as an order item.
package services
