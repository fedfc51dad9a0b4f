package config

// Specification of requested document generation strategy. Auto uses template
// strategy when template document is available and builds output from scratch
// otherwise.
// ENUM(auto, scratch, template)
type Strategy int
