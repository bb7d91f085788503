package repositories

// MaxRecords is the hard cap on collection lookups. It is a cap, not a
// pagination cursor: results beyond it are silently dropped.
const MaxRecords = 100
