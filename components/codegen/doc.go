// Package codegen provides a small net/http handler that accepts a captured
// browser recording and responds with generated code in the requested output
// format.
//
// The default handler responds to POST requests carrying the line-delimited
// recording payload in the request body. The format and title query parameters
// select the output shape and the test-case title.
package codegen
