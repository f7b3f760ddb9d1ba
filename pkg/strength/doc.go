// Package strength classifies password text into one of three strength
// variants: Weak, Medium and Strong.
//
// Classification is a pure function of the text. The default policy is
// length based (8 and 12 runes); a hybrid mode lowers both thresholds when the
// text mixes enough character classes. Thresholds live in a Policy value so
// they can be tuned without touching the algorithm.
package strength
