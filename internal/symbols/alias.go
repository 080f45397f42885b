package symbols

import "github.com/cnlforge/corelang/internal/coreir"

// DefineTypeAlias registers name -> typ in the current scope, unique
// on name (spec.md §4.5). If name is already registered in this scope
// it returns false and leaves the existing alias, and any expansion
// already memoized for it, unchanged.
func (s *Scope) DefineTypeAlias(name string, typ coreir.Type, typeParams []string) bool {
	if _, exists := s.aliases[name]; exists {
		return false
	}
	s.aliases[name] = &aliasEntry{name: name, typeParams: typeParams, typ: typ}
	return true
}

// lookupAlias walks current -> root for a registered alias, the same
// direction Lookup uses for symbols.
func (s *Scope) lookupAlias(name string) (*aliasEntry, *Scope, bool) {
	if a, ok := s.aliases[name]; ok {
		return a, s, true
	}
	if s.Parent != nil {
		return s.Parent.lookupAlias(name)
	}
	return nil, nil, false
}

// ResolveTypeAlias expands name to its fully-resolved underlying type,
// recursively expanding any nested alias references it contains. A
// cycle (an alias that, directly or through others, refers back to
// itself) returns the unexpanded TypeName{Name: name} rather than
// looping, so callers degrade gracefully instead of hanging (spec.md
// §4.5, grounded on the teacher's resolveTypeAliasWithCycleCheck
// visited-set pattern in symbol_table_aliases.go).
func (s *Scope) ResolveTypeAlias(name string) coreir.Type {
	entry, owner, ok := s.lookupAlias(name)
	if !ok {
		return &coreir.TypeName{Name: name}
	}
	if entry.expanded != nil {
		return entry.expanded
	}
	visited := map[string]bool{name: true}
	expanded := owner.resolveWithCycleCheck(entry.typ, visited)
	entry.expanded = expanded
	return expanded
}

func (s *Scope) resolveWithCycleCheck(t coreir.Type, visited map[string]bool) coreir.Type {
	switch n := t.(type) {
	case nil:
		return nil
	case *coreir.TypeName:
		entry, owner, ok := s.lookupAlias(n.Name)
		if !ok {
			return n
		}
		if visited[n.Name] {
			return &coreir.TypeName{TypeSpan: n.TypeSpan, Name: n.Name}
		}
		visited[n.Name] = true
		defer delete(visited, n.Name)
		return owner.resolveWithCycleCheck(entry.typ, visited)
	case *coreir.TypeApp:
		args := make([]coreir.Type, len(n.Args))
		for i, a := range n.Args {
			args[i] = s.resolveWithCycleCheck(a, visited)
		}
		return &coreir.TypeApp{TypeSpan: n.TypeSpan, Name: n.Name, Args: args}
	case *coreir.ResultType:
		return &coreir.ResultType{
			TypeSpan: n.TypeSpan,
			Ok:       s.resolveWithCycleCheck(n.Ok, visited),
			Err:      s.resolveWithCycleCheck(n.Err, visited),
		}
	case *coreir.MaybeType:
		return &coreir.MaybeType{TypeSpan: n.TypeSpan, Elem: s.resolveWithCycleCheck(n.Elem, visited)}
	case *coreir.OptionType:
		return &coreir.OptionType{TypeSpan: n.TypeSpan, Elem: s.resolveWithCycleCheck(n.Elem, visited)}
	case *coreir.ListType:
		return &coreir.ListType{TypeSpan: n.TypeSpan, Elem: s.resolveWithCycleCheck(n.Elem, visited)}
	case *coreir.MapType:
		return &coreir.MapType{
			TypeSpan: n.TypeSpan,
			Key:      s.resolveWithCycleCheck(n.Key, visited),
			Value:    s.resolveWithCycleCheck(n.Value, visited),
		}
	case *coreir.FuncType:
		params := make([]coreir.Type, len(n.Params))
		for i, p := range n.Params {
			params[i] = s.resolveWithCycleCheck(p, visited)
		}
		return &coreir.FuncType{
			TypeSpan:   n.TypeSpan,
			Params:     params,
			ReturnType: s.resolveWithCycleCheck(n.ReturnType, visited),
		}
	case *coreir.PiiType:
		return &coreir.PiiType{
			TypeSpan:   n.TypeSpan,
			Base:       s.resolveWithCycleCheck(n.Base, visited),
			Level:      n.Level,
			Categories: n.Categories,
		}
	case *coreir.TypeVar:
		return n
	default:
		return t
	}
}
