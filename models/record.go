package models

// CanonicalColumns is the fixed output schema for cleaned product records.
// Column order is part of the CSV contract and must not change.
var CanonicalColumns = []string{
	"site",
	"bike_type",
	"product_id",
	"href",
	"description",
	"brand",
	"price",
	"msrp",
	"frame_material",
	"model_year",
	"brake_type",
	"fork_material",
	"handlebar_material",
	"fd_groupset",
	"rd_groupset",
	"cassette_groupset",
	"crankset_material",
	"crankset_groupset",
	"seatpost_material",
	"chain_groupset",
	"shifter_groupset",
}

// Table kinds tracked by the manifest.
const (
	TableProducts     = "products"
	TableProductSpecs = "product_specs"
	TableMunged       = "munged"
)

// BikeTypeAll is the partition label for files spanning all bike types.
const BikeTypeAll = "all"

// TimestampFormat is the layout for batch ids. One batch id names every
// file a single pipeline run produces.
const TimestampFormat = "20060102150405"
