// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, any outbound calls
// (travel-time estimation) before the transaction, then transactional
// persistence through a unit of work.
package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/ports"
)

// ErrCustomerRoleRequired is returned when an operation reserved for
// customers is attempted by any other actor.
var ErrCustomerRoleRequired = errors.New("only customers can perform this operation")

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CatalogRepoFactory provides read access to menu item and restaurant
	// snapshots. Catalog reads need no transaction of their own.
	CatalogRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
		RestaurantRepository() ports.RestaurantRepository
	}

	// RatingRepoFactory provides access to the rating repository within a transaction.
	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by status transitions and the stale-order sweep.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderingUoW manages transactions for order creation flows, which read
	// catalog snapshots and write order aggregates.
	OrderingUoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
	}

	// OrderingUoWFactory creates new ordering unit of work instances.
	OrderingUoWFactory interface {
		Create() OrderingUoW
	}

	// RatingUoW manages transactions for rating attachment, which reads the
	// order aggregate and writes the rating.
	RatingUoW interface {
		TxManager
		OrderRepoFactory
		RatingRepoFactory
	}

	// RatingUoWFactory creates new rating unit of work instances.
	RatingUoWFactory interface {
		Create() RatingUoW
	}
)
