// Package creativesapi implements driven.CreativeSource over the creatives
// HTTP API.
//
// Pages are read with GET {base}/creatives?limit=N&cursor=C. The cursor is
// omitted for the first page. Responses carry creative_details, has_more and
// an optional next_cursor, which may be a number or a string.
//
// Requests are throttled with a token bucket, optionally authenticated with a
// static bearer token, and tagged with an X-Request-ID. Any transport failure,
// non-2xx status or undecodable body is returned as an error; partial pages
// are never returned.
package creativesapi
