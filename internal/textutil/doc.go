// Package textutil provides the tokenizer shared by the counting and merge
// commands.
//
// Tokens are maximal runs of runes outside a DelimiterSet. Two sets cover
// every caller:
//   - Whitespace splits on ASCII whitespace and is used for exact word matching
//   - Punctuation adds '.', ',', '!' and '?' and is used for word/character
//     statistics
//
// Tokenization is lazy (Tokens returns an iter.Seq) and never yields empty
// strings, so leading, trailing, and repeated delimiters collapse away before
// anything is counted. Fold and Normalize are optional preprocessing steps for
// case-insensitive matching and canonical Unicode composition.
package textutil
