// Package field models the state behind a password input with a strength
// indicator: the current text, its classification, and whether the text is
// shown or masked.
//
// Hosts forward every edit (SetText or ReplaceRange). The field re-classifies
// synchronously and notifies listeners before the call returns, so the
// indicator never lags the text. A Field belongs to one host and is not safe
// for concurrent use.
package field
