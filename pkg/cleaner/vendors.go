package cleaner

// rule coalesces raw vendor columns onto one intermediate standard column.
// Sources are tried in order and only fill cells still null; a populated
// target cell is never overwritten.
type rule struct {
	target  string
	sources []string
}

// vendorConfig is one vendor's field-aliasing rule set.
type vendorConfig struct {
	rules []rule

	// yearFromHref switches model-year extraction from the description to
	// the product href (some catalogs only encode the year in the URL).
	yearFromHref bool
}

// defaultRules run after the vendor rules and absorb the column names most
// vendors share. A vendor rule for the same target takes precedence because
// coalescing never overwrites a populated cell.
var defaultRules = []rule{
	{"description", []string{"name", "title", "product_name"}},
	{"href", []string{"url", "link"}},
	{"brand", []string{"manufacturer", "brand_name"}},
	{"price", []string{"sale_price", "current_price"}},
	{"msrp", []string{"list_price", "original_price", "retail_price"}},
	{"frame", []string{"frame_material"}},
	{"fork", []string{"fork_material"}},
	{"handlebar", []string{"handlebars", "bars"}},
	{"seatpost", []string{"seat_post"}},
	{"crankset", []string{"crank", "cranks"}},
	{"front_derailleur", []string{"front_mech", "fd"}},
	{"rear_derailleur", []string{"rear_mech", "rd"}},
	{"cassette", []string{"rear_cogs", "freewheel", "cogset"}},
	{"chain", []string{"drive_chain"}},
	{"shifters", []string{"shifter", "shift_levers"}},
	{"brakes", []string{"brake_type", "brakeset"}},
}

// vendors is the closed set of sites the pipeline can clean. Each entry is
// that vendor's quirks on top of defaultRules; a site missing here has no
// cleaner and is rejected (or skipped during batch cleaning).
var vendors = map[string]vendorConfig{
	"backcountry": {
		rules: []rule{
			{"bike_type", []string{"recommended_use"}},
			{"crankset", []string{"crank_arms", "crankset"}},
			{"cassette", []string{"cassette", "rear_cogs"}},
			{"brakes", []string{"brakes", "brake_set"}},
		},
	},
	"canyon": {
		rules: []rule{
			{"bike_type", []string{"category"}},
			{"handlebar", []string{"handlebar", "cockpit"}},
			{"shifters", []string{"shift_levers", "shifters"}},
			{"brakes", []string{"brake", "brake_levers"}},
		},
	},
	"citybikes": {
		rules: []rule{
			{"brakes", []string{"brakeset", "brake_levers"}},
			{"crankset", []string{"crank"}},
			{"bike_type", []string{"style"}},
		},
	},
	"competitive": {
		rules: []rule{
			{"bike_type", []string{"recommended_use"}},
			{"brakes", []string{"brakes", "brake_type"}},
			{"frame", []string{"frame_material"}},
		},
	},
	"contebikes": {
		rules: []rule{
			{"brakes", []string{"brake_type", "brake_levers"}},
			{"crankset", []string{"crank_set", "crank"}},
		},
	},
	"eriks": {
		rules: []rule{
			{"frame", []string{"frame_tubing", "frame"}},
			{"brakes", []string{"brake_calipers", "brake_levers"}},
			{"shifters", []string{"gear_levers", "shifters"}},
		},
	},
	"foxvalley": {
		rules: []rule{
			{"brakes", []string{"brakes", "brake_levers"}},
		},
	},
	"giant": {
		rules: []rule{
			{"bike_type", []string{"category"}},
		},
	},
	"litespeed": {
		rules: []rule{
			{"frame", []string{"frame_material", "frame"}},
			{"seatpost", []string{"seat_post", "seatpost"}},
		},
	},
	"lynskey": {
		rules: []rule{
			{"frame", []string{"frame_tubing", "frame"}},
		},
	},
	"nashbar": {
		rules: []rule{
			{"brakes", []string{"brakes", "brake_levers"}},
			{"crankset", []string{"crank"}},
		},
	},
	"performance": {
		rules: []rule{
			{"brakes", []string{"brakeset"}},
			{"shifters", []string{"shift_levers", "shifters"}},
		},
	},
	"proshop": {
		rules: []rule{
			{"crankset", []string{"chainset", "crank"}},
		},
	},
	"rei": {
		rules: []rule{
			{"bike_type", []string{"best_use", "bike_type"}},
		},
		yearFromHref: true,
	},
	"specialized": {
		rules: []rule{
			{"bike_type", []string{"category"}},
			{"seatpost", []string{"seat_binder", "seatpost"}},
		},
	},
	"spokes": {
		rules: []rule{
			{"brakes", []string{"brakes", "brake_levers"}},
		},
	},
	"trek": {
		rules: []rule{
			{"frame", []string{"frame", "frame_material"}},
			{"bike_type", []string{"category"}},
		},
	},
	"wiggle": {
		rules: []rule{
			{"crankset", []string{"chainset", "crank"}},
			{"brakes", []string{"brakes", "brake_levers"}},
		},
	},
}

// Sites returns the closed set of sites with a registered cleaner.
func Sites() []string {
	sites := make([]string, 0, len(vendors))
	for site := range vendors {
		sites = append(sites, site)
	}
	return sites
}
