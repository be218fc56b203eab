package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;

-- Raw product listings, one row per (site, product_id) per scrape.
CREATE TABLE IF NOT EXISTS products (
    site TEXT NOT NULL,
    product_id TEXT NOT NULL,
    bike_type TEXT,
    href TEXT,
    description TEXT,
    brand TEXT,
    price TEXT,
    msrp TEXT,
    PRIMARY KEY (site, product_id)
);

-- Cleaned canonical records.
CREATE TABLE IF NOT EXISTS munged (
    site TEXT NOT NULL,
    bike_type TEXT,
    product_id TEXT NOT NULL,
    href TEXT,
    description TEXT,
    brand TEXT,
    price TEXT,
    msrp TEXT,
    frame_material TEXT,
    model_year TEXT,
    brake_type TEXT,
    fork_material TEXT,
    handlebar_material TEXT,
    fd_groupset TEXT,
    rd_groupset TEXT,
    cassette_groupset TEXT,
    crankset_material TEXT,
    crankset_groupset TEXT,
    seatpost_material TEXT,
    chain_groupset TEXT,
    shifter_groupset TEXT,
    PRIMARY KEY (site, product_id)
);

CREATE INDEX IF NOT EXISTS idx_munged_bike_type ON munged(bike_type);
CREATE INDEX IF NOT EXISTS idx_munged_brand ON munged(brand);
`
