package domain

// AmbiguousRef records a bare dependency reference that, after pruning,
// resolves to more than one retained version of the same name. The reference
// is kept as written; the record exists so the rewrite can be audited.
type AmbiguousRef struct {
	Owner    PackageID
	Name     string
	Versions []string
}

// PruneResult is the audit trail of a single prune pass.
type PruneResult struct {
	// Excluded lists the removed entries in document order.
	Excluded []PackageID
	// DroppedRefs counts dependency references stripped from retained
	// entries because their target was excluded.
	DroppedRefs int
	// UnmatchedRules lists patterns that matched no entry name in the input
	// document. These are surfaced as warnings, never as errors.
	UnmatchedRules []string
	// Ambiguous lists bare references that match several retained versions.
	Ambiguous []AmbiguousRef
}

// Changed reports whether the pass removed anything.
func (r *PruneResult) Changed() bool {
	return len(r.Excluded) > 0 || r.DroppedRefs > 0
}

// Prune removes every entry whose name matches the rule set and strips the
// removed names from all surviving dependency lists. Exclusion is name based:
// when a name matches, every version of it leaves the document together.
//
// The pass runs in two phases over the input. Phase one classifies entry
// names against the rules, phase two rebuilds the document from the retained
// entries with their references filtered. The input document is never
// mutated, entry and reference order is preserved, and pruning an already
// pruned document returns an equal document.
func Prune(doc *LockDocument, rules RuleSet) (*LockDocument, *PruneResult) {
	result := &PruneResult{}

	excluded := make(map[string]bool)
	for i := range doc.Packages {
		name := doc.Packages[i].Name()
		if !excluded[name] && rules.Matches(name) {
			excluded[name] = true
		}
	}
	for _, rule := range rules.Rules() {
		matched := false
		for i := range doc.Packages {
			if rule.Matches(doc.Packages[i].Name()) {
				matched = true
				break
			}
		}
		if !matched {
			result.UnmatchedRules = append(result.UnmatchedRules, rule.Pattern())
		}
	}

	pruned := &LockDocument{}
	if doc.Preamble != nil {
		pruned.Preamble = make([]string, len(doc.Preamble))
		copy(pruned.Preamble, doc.Preamble)
	}
	for i := range doc.Packages {
		pkg := &doc.Packages[i]
		if excluded[pkg.Name()] {
			result.Excluded = append(result.Excluded, pkg.ID)
			continue
		}
		kept := pkg.Clone()
		if len(kept.Dependencies) > 0 {
			refs := kept.Dependencies[:0]
			for _, ref := range kept.Dependencies {
				if excluded[ref.Name.String()] {
					result.DroppedRefs++
					continue
				}
				refs = append(refs, ref)
			}
			kept.Dependencies = refs
		}
		pruned.Packages = append(pruned.Packages, kept)
	}

	versions := make(map[string]int)
	for i := range pruned.Packages {
		versions[pruned.Packages[i].Name()]++
	}
	for i := range pruned.Packages {
		pkg := &pruned.Packages[i]
		for _, ref := range pkg.Dependencies {
			if ref.Bare() && versions[ref.Name.String()] > 1 {
				result.Ambiguous = append(result.Ambiguous, AmbiguousRef{
					Owner:    pkg.ID,
					Name:     ref.Name.String(),
					Versions: pruned.Versions(ref.Name.String()),
				})
			}
		}
	}

	return pruned, result
}
