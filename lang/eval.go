package lang

import (
	"context"
	"log/slog"

	"github.com/sahilm/fuzzy"
	"golang.org/x/sync/errgroup"

	"github.com/quiltlang/quilt/log"
	"github.com/quiltlang/quilt/shape"
)

// DefaultMaxDepth bounds user-function recursion during reduction.
const DefaultMaxDepth = 1500

// scopeTag identifies the function body (and weighted branch) a local
// binding belongs to. Globals carry no tag.
type scopeTag struct {
	name   string
	branch int
}

// functionBranch is one weighted alternative of a function.
type functionBranch struct {
	body   Expr
	weight float32
}

// function is a callable entry in the evaluation stack: a global or let
// definition with one or more weighted branches, or an already evaluated
// binding (parameter, loop variable) holding its value directly.
type function struct {
	value    Value
	scope    *scopeTag
	name     string
	params   []string
	branches []functionBranch
}

// stack is one frame of the evaluation environment. Frames are cloned on
// every call so parallel branches never share mutable state.
type stack struct {
	funcs map[string]*function
	scope *scopeTag
	depth int
}

func (st *stack) clone() *stack {
	funcs := make(map[string]*function, len(st.funcs))
	for name, fn := range st.funcs {
		funcs[name] = fn
	}

	return &stack{funcs: funcs, scope: st.scope, depth: st.depth}
}

// pruneToGlobals drops the caller's local bindings so a called body sees
// only its own parameters and global definitions.
func (st *stack) pruneToGlobals() {
	for name, fn := range st.funcs {
		if fn.scope != nil {
			delete(st.funcs, name)
		}
	}
}

// ReduceOption configures a reduction.
type ReduceOption func(*evaluator)

// WithSeed fixes the generator seed, making the reduction reproducible.
func WithSeed(seed [32]byte) ReduceOption {
	return func(ev *evaluator) { s := seed; ev.seed = &s }
}

// WithMaxDepth overrides the recursion depth limit.
func WithMaxDepth(depth int) ReduceOption {
	return func(ev *evaluator) { ev.maxDepth = depth }
}

// WithDimensions sets the canvas size reported by the width and height
// builtins.
func WithDimensions(width, height int) ReduceOption {
	return func(ev *evaluator) { ev.width, ev.height = width, height }
}

// WithLogger routes reduction diagnostics to the given logger.
func WithLogger(logger log.Logger) ReduceOption {
	return func(ev *evaluator) { ev.log = logger }
}

type evaluator struct {
	cache    *Cache
	seed     *[32]byte
	log      log.Logger
	width    int
	height   int
	maxDepth int
}

// Reduce evaluates a parsed tree to the shape produced by its root
// definition.
func Reduce(
	ctx context.Context, tree *Tree, opts ...ReduceOption,
) (*shape.Shape, error) {
	ev := &evaluator{
		log:      log.Default(),
		width:    400,
		height:   400,
		maxDepth: DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(ev)
	}

	cache, err := NewCache(ev.seed)
	if err != nil {
		return nil, err
	}

	ev.cache = cache

	globals, err := buildFunctions(tree)
	if err != nil {
		return nil, err
	}

	ev.log.DebugContext(ctx, "reducing tree",
		slog.Int("definitions", len(tree.Defs)),
		slog.Int("width", ev.width),
		slog.Int("height", ev.height),
		slog.Bool("seeded", ev.seed != nil),
	)

	root, ok := globals["root"]
	if !ok {
		return nil, ErrRootNotFound
	}

	st := &stack{funcs: globals}

	v, err := ev.callFunction(ctx, st, root, nil)
	if err != nil {
		return nil, err
	}

	sv, ok := v.(ShapeValue)
	if !ok {
		kind, _ := v.Kind()

		return nil, ErrInvalidRoot.With(slog.String("have", kind.String()))
	}

	return sv.Shape, nil
}

// buildFunctions groups the tree's definitions by name. Same-named
// definitions become weighted branches of one function and must agree on
// their parameter lists.
func buildFunctions(tree *Tree) (map[string]*function, error) {
	funcs := make(map[string]*function, len(tree.Defs))

	for _, def := range tree.Defs {
		fn, ok := funcs[def.Name]
		if !ok {
			funcs[def.Name] = &function{
				name:     def.Name,
				params:   def.Params,
				branches: []functionBranch{{body: def.Body, weight: def.Weight}},
			}

			continue
		}

		if !equalParams(fn.params, def.Params) {
			return nil, ErrInvalidDefinition.With(
				slog.String("function", def.Name),
				slog.Any("params", fn.params),
				slog.Any("conflicting", def.Params),
			)
		}

		fn.branches = append(fn.branches, functionBranch{
			body:   def.Body,
			weight: def.Weight,
		})
	}

	return funcs, nil
}

func equalParams(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func (ev *evaluator) reduceExpr(
	ctx context.Context, st *stack, expr Expr,
) (Value, error) {
	switch e := expr.(type) {
	case *LitExpr:
		return literalValue(e.Lit)
	case *ListExpr:
		return ev.reduceList(ctx, st, e)
	case *UnaryExpr:
		return ev.reduceUnary(ctx, st, e)
	case *BinaryExpr:
		return ev.reduceBinary(ctx, st, e)
	case *CallExpr:
		return ev.reduceCall(ctx, st, e.Name, e.Args)
	case *LetExpr:
		return ev.reduceLet(ctx, st, e)
	case *IfExpr:
		return ev.reduceIf(ctx, st, e)
	case *MatchExpr:
		return ev.reduceMatch(ctx, st, e)
	case *ForExpr:
		return ev.reduceFor(ctx, st, e)
	case *LoopExpr:
		return ev.reduceLoop(ctx, st, e)
	default:
		return nil, ErrInvalidArgument.With(slog.Any("expr", expr))
	}
}

// reduceAll evaluates exprs preserving order. When at least two operands
// need real work they run concurrently.
func (ev *evaluator) reduceAll(
	ctx context.Context, st *stack, exprs []Expr,
) ([]Value, error) {
	vals := make([]Value, len(exprs))

	if len(exprs) < 2 || allLiteral(exprs) {
		for i, e := range exprs {
			v, err := ev.reduceExpr(ctx, st, e)
			if err != nil {
				return nil, err
			}

			vals[i] = v
		}

		return vals, nil
	}

	g, gctx := errgroup.WithContext(ctx)

	for i, e := range exprs {
		g.Go(func() error {
			v, err := ev.reduceExpr(gctx, st, e)
			if err != nil {
				return err
			}

			vals[i] = v

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return vals, nil
}

func allLiteral(exprs []Expr) bool {
	for _, e := range exprs {
		if _, ok := e.(*LitExpr); !ok {
			return false
		}
	}

	return true
}

func (ev *evaluator) reduceList(
	ctx context.Context, st *stack, e *ListExpr,
) (Value, error) {
	vals, err := ev.reduceAll(ctx, st, e.Elems)
	if err != nil {
		return nil, err
	}

	list := List(vals)
	if _, err := list.Kind(); err != nil {
		return nil, err
	}

	return list, nil
}

func (ev *evaluator) reduceUnary(
	ctx context.Context, st *stack, e *UnaryExpr,
) (Value, error) {
	v, err := ev.reduceExpr(ctx, st, e.Operand)
	if err != nil {
		return nil, err
	}

	b, ok := builtins[e.Op.Name()]
	if !ok {
		return nil, ErrUnknownFunction.With(slog.String("operator", e.Op.Name()))
	}

	return b.fn(ev, []Value{v})
}

func (ev *evaluator) reduceBinary(
	ctx context.Context, st *stack, e *BinaryExpr,
) (Value, error) {
	vals, err := ev.reduceAll(ctx, st, []Expr{e.LHS, e.RHS})
	if err != nil {
		return nil, err
	}

	b, ok := builtins[e.Op.String()]
	if !ok {
		return nil, ErrUnknownFunction.With(slog.String("operator", e.Op.String()))
	}

	return b.fn(ev, vals)
}

func (ev *evaluator) reduceLet(
	ctx context.Context, st *stack, e *LetExpr,
) (Value, error) {
	next := st.clone()

	for _, def := range e.Defs {
		next.funcs[def.Name] = &function{
			name:   def.Name,
			params: def.Params,
			scope:  st.scope,
			branches: []functionBranch{
				{body: def.Body, weight: def.Weight},
			},
		}
	}

	return ev.reduceExpr(ctx, next, e.Body)
}

func (ev *evaluator) reduceIf(
	ctx context.Context, st *stack, e *IfExpr,
) (Value, error) {
	cond, err := ev.reduceExpr(ctx, st, e.Cond)
	if err != nil {
		return nil, err
	}

	b, ok := cond.(Boolean)
	if !ok {
		return nil, ErrInvalidCondition.With(
			slog.String("have", cond.String()),
		)
	}

	if bool(b) {
		return ev.reduceExpr(ctx, st, e.Then)
	}

	return ev.reduceExpr(ctx, st, e.Else)
}

func (ev *evaluator) reduceMatch(
	ctx context.Context, st *stack, e *MatchExpr,
) (Value, error) {
	scrutinee, err := ev.reduceExpr(ctx, st, e.Scrutinee)
	if err != nil {
		return nil, err
	}

	for _, arm := range e.Arms {
		if arm.Wildcard {
			return ev.reduceExpr(ctx, st, arm.Body)
		}

		for _, pat := range arm.Patterns {
			pv, err := literalValue(pat)
			if err != nil {
				return nil, err
			}

			ok, err := patternMatch(scrutinee, pv)
			if err != nil {
				return nil, err
			}

			if ok {
				return ev.reduceExpr(ctx, st, arm.Body)
			}
		}
	}

	return nil, ErrMatchNotFound.With(
		slog.String("value", scrutinee.String()),
	)
}

func (ev *evaluator) reduceFor(
	ctx context.Context, st *stack, e *ForExpr,
) (Value, error) {
	iter, err := ev.reduceExpr(ctx, st, e.Iter)
	if err != nil {
		return nil, err
	}

	// A numeric scrutinee iterates the integers 0..n.
	var items List

	switch v := iter.(type) {
	case List:
		items = v
	case Integer:
		items, err = countItems(int32(v))
	case Float:
		items, err = countItems(int32(v))
	default:
		return nil, ErrNotIterable.With(slog.String("have", iter.String()))
	}

	if err != nil {
		return nil, err
	}

	bind := func(item Value) *stack {
		next := st.clone()
		next.funcs[e.Var] = &function{
			name:  e.Var,
			value: item,
			scope: st.scope,
		}

		return next
	}

	results := make([]Value, len(items))

	if len(items) < 2 {
		for i, item := range items {
			v, err := ev.reduceExpr(ctx, bind(item), e.Body)
			if err != nil {
				return nil, err
			}

			results[i] = v
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)

		for i, item := range items {
			g.Go(func() error {
				v, err := ev.reduceExpr(gctx, bind(item), e.Body)
				if err != nil {
					return err
				}

				results[i] = v

				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	list := List(results)
	if _, err := list.Kind(); err != nil {
		return nil, err
	}

	return list, nil
}

// countItems materializes the integers 0..n for numeric for scrutinees.
func countItems(n int32) (List, error) {
	if n < 0 {
		return nil, ErrNegativeNumber.With(slog.Int("count", int(n)))
	}

	items := make(List, n)
	for i := range items {
		items[i] = Integer(i)
	}

	return items, nil
}

func (ev *evaluator) reduceLoop(
	ctx context.Context, st *stack, e *LoopExpr,
) (Value, error) {
	count, err := ev.reduceExpr(ctx, st, e.Count)
	if err != nil {
		return nil, err
	}

	var n int32

	switch v := count.(type) {
	case Integer:
		n = int32(v)
	case Float:
		n = int32(v)
	default:
		return nil, ErrNotIterable.With(slog.String("have", count.String()))
	}

	if n < 0 {
		return nil, ErrNegativeNumber.With(slog.Int("count", int(n)))
	}

	results := make([]Value, n)

	if n < 2 {
		for i := range results {
			v, err := ev.reduceExpr(ctx, st, e.Body)
			if err != nil {
				return nil, err
			}

			results[i] = v
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)

		for i := range results {
			g.Go(func() error {
				v, err := ev.reduceExpr(gctx, st, e.Body)
				if err != nil {
					return err
				}

				results[i] = v

				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	list := List(results)
	if _, err := list.Kind(); err != nil {
		return nil, err
	}

	return list, nil
}

func (ev *evaluator) reduceCall(
	ctx context.Context, st *stack, name string, argExprs []Expr,
) (Value, error) {
	// Builtins resolve first, so a user binding can never shadow one.
	if b, ok := builtins[name]; ok {
		return ev.callBuiltin(ctx, st, name, b, argExprs)
	}

	if fn, ok := st.funcs[name]; ok {
		return ev.callFunction(ctx, st, fn, argExprs)
	}

	return nil, unknownFunction(st, name)
}

func (ev *evaluator) callFunction(
	ctx context.Context, st *stack, fn *function, argExprs []Expr,
) (Value, error) {
	// Evaluated bindings hold their value directly and take no arguments.
	if fn.value != nil {
		if len(argExprs) != 0 {
			return nil, ErrInvalidArgument.With(
				slog.String("function", fn.name),
				slog.Int("want", 0),
				slog.Int("have", len(argExprs)),
			)
		}

		return fn.value, nil
	}

	if len(argExprs) != len(fn.params) {
		return nil, ErrInvalidArgument.With(
			slog.String("function", fn.name),
			slog.Int("want", len(fn.params)),
			slog.Int("have", len(argExprs)),
		)
	}

	args, err := ev.reduceAll(ctx, st, argExprs)
	if err != nil {
		return nil, err
	}

	branch := 0

	if len(fn.branches) > 1 {
		weights := make([]float32, len(fn.branches))
		for i, br := range fn.branches {
			weights[i] = br.weight
		}

		branch, err = ev.cache.WeightedIndex(weights)
		if err != nil {
			return nil, err
		}
	}

	var key uint64

	global := fn.scope == nil
	if global {
		key = hashCall(fn.name, branch, args, st.scope)

		if v, ok := ev.cache.Get(key); ok {
			return v, nil
		}
	}

	next := st.clone()
	if global {
		next.pruneToGlobals()
	}

	next.scope = &scopeTag{name: fn.name, branch: branch}
	next.depth++

	if next.depth > ev.maxDepth {
		return nil, ErrMaxDepthReached.With(
			slog.String("function", fn.name),
			slog.Int("depth", next.depth),
		)
	}

	for i, param := range fn.params {
		next.funcs[param] = &function{
			name:  param,
			value: args[i],
			scope: next.scope,
		}
	}

	v, err := ev.reduceExpr(ctx, next, fn.branches[branch].body)
	if err != nil {
		return nil, err
	}

	if global {
		ev.cache.Put(key, v)
	}

	return v, nil
}

func (ev *evaluator) callBuiltin(
	ctx context.Context, st *stack, name string, b builtin, argExprs []Expr,
) (Value, error) {
	if len(argExprs) != b.arity {
		return nil, ErrInvalidArgument.With(
			slog.String("function", name),
			slog.Int("want", b.arity),
			slog.Int("have", len(argExprs)),
		)
	}

	args, err := ev.reduceAll(ctx, st, argExprs)
	if err != nil {
		return nil, err
	}

	// Random draws must consult the live generator on every call.
	if b.impure {
		return b.fn(ev, args)
	}

	key := hashCall(name, 0, args, nil)

	if v, ok := ev.cache.Get(key); ok {
		return v, nil
	}

	v, err := b.fn(ev, args)
	if err != nil {
		return nil, err
	}

	ev.cache.Put(key, v)

	return v, nil
}

// unknownFunction builds the error for a name that resolves nowhere,
// suggesting the closest known function when one is plausible.
func unknownFunction(st *stack, name string) error {
	candidates := make([]string, 0, len(st.funcs)+len(builtins))

	for fn := range st.funcs {
		candidates = append(candidates, fn)
	}

	for fn := range builtins {
		candidates = append(candidates, fn)
	}

	err := ErrUnknownFunction.With(slog.String("function", name))

	if matches := fuzzy.Find(name, candidates); len(matches) > 0 {
		err = err.With(slog.String("suggestion", matches[0].Str))
	}

	return err
}
