package domain

// Table is a mongo collection name
type Table string

const (
	TableListings           Table = "listings"
	TableMarketplaceConfigs Table = "marketplace_configs"
	TableListingCounters    Table = "listing_counters"
	TableActivities         Table = "activities"
	TableBridgeReceipts     Table = "bridge_receipts"
)
