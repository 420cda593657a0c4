package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	ErrInvalidChainId = errors.New("invalid chain id")
	ErrInvalidAddress = errors.New("Invalid address")

	// authorization errors: the caller lacks the required capability
	ErrNotFromRouter    = errors.New("caller is not the bridge router")
	ErrNotFromContract  = errors.New("caller is not the settlement coordinator")
	ErrNotTokenOwner    = errors.New("caller does not own the token")
	ErrNotListingOwner  = errors.New("caller is not the listing owner")
	ErrNotMarketOwner   = errors.New("caller is not the marketplace owner")

	// validation errors: the request does not match required preconditions
	ErrNotApprovedNFT         = errors.New("collection is not approved")
	ErrNonexistentListing     = errors.New("listing does not exist")
	ErrNotActiveLocalListing  = errors.New("listing is not active for local purchase")
	ErrNotActiveGlobalListing = errors.New("listing is not active for cross-chain purchase")
	ErrUnknownRemoteMarket    = errors.New("no remote marketplace registered for chain")

	// payment mismatch errors: the exact-payment contract is violated
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrExcessFunds       = errors.New("excess funds")

	// transfer errors: a fund movement failed at the asset gateway
	ErrFundsTransferFailure = errors.New("funds transfer failure")
)
