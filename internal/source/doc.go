// Package source implements the conference listing fetchers.
//
// Each fetcher implements the Source interface and returns loosely-shaped
// conference records normalized to the shared model. Live sources (the
// developers.events API, the confs.tech GitHub tree, the Papercall and WikiCFP
// HTML directories) share one retrying HTTP client with a bounded per-source
// timeout. The curated catalogs (IEEE, ACM, top ML venues) are static
// series-times-years expansions that guarantee baseline coverage when live
// sources are unreachable.
//
// A fetcher returning an error means "zero records from this source"; the
// pipeline logs it and moves on.
package source
