// Package services is the lineage engine.
//
// The parser validates raw group payloads into version records and collects
// warnings for anything it drops. Flatten merges every group into one table
// sorted by version id. The selection type keeps the last two distinct picks
// and emits a diff request once both slots are filled. Session ties these
// to a gateway for a single loaded lineage.
package services
