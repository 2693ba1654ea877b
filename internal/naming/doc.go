// Package naming infers headphone identity from AutoEQ directory names.
//
// Headphone folders are named "<Manufacturer> <Model>" with no
// separator, so the split relies on an ordered list of known
// manufacturer names (multi-word brands like "Dan Clark Audio" would
// otherwise split wrong). Target folders group headphones by measuring
// rig and encode the form factor in their name ("IEM targets",
// "Earbud targets").
package naming
