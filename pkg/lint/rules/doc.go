// Package rules provides the built-in grammar rules for gramlint.
//
// # Rules
//
//   - GR001: repeated-word - The same word should not appear twice in a row.
//     Option ignore lists words allowed to repeat ("had had").
//
//   - GR002: capitalization - Sentences should start with a capital letter.
//     Option exceptions lists first words exempt verbatim (default: iOS, iPhone,
//     iPad, eBay, macOS).
//
//   - GR003: terminal-punctuation - Sentences should end with '.', '!' or '?'.
//     Legacy alias: punctuation.
//
//   - GR004: double-space - Two or more consecutive spaces.
//
//   - GR005: run-on-sentence - More than max_words words (default 30) with one of
//     the conjunctions (default: and, but, or, so, because, although) in the
//     second half of the sentence. Legacy alias: long-sentence.
//
// # Writing a Rule
//
// A rule embeds lint.BaseRule, implements Apply and is added to RegisterAll.
// Apply receives the segmented document through lint.RuleContext and must not
// modify it. Offsets in returned issues are byte offsets into
// RuleContext.Content. Rules that read options also implement
// lint.Configurable so `gramlint init --full` can document their defaults.
package rules
