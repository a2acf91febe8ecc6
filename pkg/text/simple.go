// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package text applies literal, case-sensitive replacement rules to names and paths.
package text

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🔄 ReplacementRule replaces every occurrence of FromText with ToText
type ReplacementRule struct {
	FromText string
	ToText   string
}

// String returns the rule as "from -> to"
func (r ReplacementRule) String() string {
	return r.FromText + " -> " + r.ToText
}

// 📊 RuleResult records how often a single rule matched
type RuleResult struct {
	Rule  ReplacementRule
	Count int
}

// 📦 ReplacementResult contains the results of applying a rule set
type ReplacementResult struct {
	Original         string
	Modified         string
	WasModified      bool
	ReplacementCount int
	Rules            []RuleResult
}

// Unmatched returns the rules that did not match anything
func (r *ReplacementResult) Unmatched() []ReplacementRule {
	var out []ReplacementRule
	for _, rr := range r.Rules {
		if rr.Count == 0 {
			out = append(out, rr.Rule)
		}
	}
	return out
}

// SimpleTextReplacer applies rules in order using strings.ReplaceAll
type SimpleTextReplacer struct {
	rules []ReplacementRule
}

// 🏭 NewSimpleTextReplacer creates a replacer for the given rules.
// Rules with an empty FromText are rejected.
func NewSimpleTextReplacer(rules ...ReplacementRule) (*SimpleTextReplacer, error) {
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}
	return &SimpleTextReplacer{rules: rules}, nil
}

// MustSimpleTextReplacer is NewSimpleTextReplacer for rule sets known at compile time
func MustSimpleTextReplacer(rules ...ReplacementRule) *SimpleTextReplacer {
	r, err := NewSimpleTextReplacer(rules...)
	if err != nil {
		panic(err)
	}
	return r
}

// Rules returns a copy of the configured rules
func (r *SimpleTextReplacer) Rules() []ReplacementRule {
	return append([]ReplacementRule(nil), r.rules...)
}

// ReplaceText applies each rule, in order, to content
func (r *SimpleTextReplacer) ReplaceText(content string) *ReplacementResult {
	result := &ReplacementResult{
		Original: content,
		Rules:    make([]RuleResult, 0, len(r.rules)),
	}

	current := content
	for _, rule := range r.rules {
		count := strings.Count(current, rule.FromText)
		if count > 0 {
			current = strings.ReplaceAll(current, rule.FromText, rule.ToText)
		}
		result.ReplacementCount += count
		result.Rules = append(result.Rules, RuleResult{Rule: rule, Count: count})
	}

	result.Modified = current
	result.WasModified = current != content
	return result
}

// Replace is ReplaceText without the bookkeeping
func (r *SimpleTextReplacer) Replace(content string) string {
	return r.ReplaceText(content).Modified
}

// ✅ ValidateRules checks that every rule has something to match
func ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from text is required", i)
		}
	}
	return nil
}
