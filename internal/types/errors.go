package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace is the error codespace for all exoscope errors.
const Codespace = "exoscope"

var (
	// ErrCatalogLoad is returned when the catalog file is missing, unreadable
	// or lacks a required column header. No partial catalog is ever returned with it.
	ErrCatalogLoad = errorsmod.Register(Codespace, 2, "catalog load failed")

	// ErrInvalidParameter is returned for malformed request parameters.
	ErrInvalidParameter = errorsmod.Register(Codespace, 3, "invalid parameter")

	// ErrInvalidConfig is returned by configuration validation.
	ErrInvalidConfig = errorsmod.Register(Codespace, 4, "invalid configuration")
)
