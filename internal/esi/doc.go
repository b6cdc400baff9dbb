// Package esi provides the EVE Swagger Interface REST client used to
// fetch region order books.
//
// Endpoint:
//   - https://esi.evetech.net/latest
//
// Order-book responses are paginated via the X-Pages response header;
// the client follows every page. Transport and parsing concerns stop
// here: callers receive domain orders or an error.
package esi
