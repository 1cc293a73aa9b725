package stress

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strconv"

	"github.com/guiguan/caster"
	"github.com/npillmayer/avl"
)

// Op is a kind of tree operation performed by a Driver.
type Op int

// Operation kinds.
const (
	OpInsert Op = iota
	OpDelete
	OpSearch
	OpQuery
	OpSplitJoin
)

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpSearch:
		return "search"
	case OpQuery:
		return "query"
	case OpSplitJoin:
		return "split/join"
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// Event is published to subscribers for every operation of a run. The last
// event of a run has Done set.
type Event struct {
	Step  int   // 0-based number of the operation
	Op    Op    // kind of operation
	Key   int   // key operated on; 0 for queries
	Steps int   // rebalancing steps, or the join cost for OpSplitJoin
	Err   error // error returned by the tree, e.g. avl.ErrDuplicateKey
	Size  int   // tree size after the operation
	Done  bool
}

// Driver performs random operations on a tree of strings and mirrors them on
// a map. A Driver is not safe for concurrent use, except for Subscribe.
type Driver struct {
	cfg    Config
	rnd    *rand.Rand
	tree   *avl.Tree[string]
	model  map[int]string
	cast   *caster.Caster
	report Report
}

// New creates a driver for an empty tree.
func New(cfg Config) (*Driver, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	d := &Driver{
		cfg:   cfg,
		rnd:   rand.New(rand.NewSource(cfg.Seed)),
		tree:  avl.New[string](),
		model: make(map[int]string),
		cast:  caster.New(nil),
	}
	d.report.Seed = cfg.Seed
	d.report.Counts = make(map[Op]int)
	return d, nil
}

// Tree returns the tree operated on.
func (d *Driver) Tree() *avl.Tree[string] {
	return d.tree
}

// Subscribe returns a channel which receives an Event for every operation
// of subsequent runs. Subscribers have to drain their channel, as a run
// blocks on full channels. The channel is closed if ctx is done or the
// driver is closed.
func (d *Driver) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	ch, ok := d.cast.Sub(ctx, capacity)
	return ch, ok
}

// Close closes all subscriber channels. A closed driver may still run, but
// does not publish any events.
func (d *Driver) Close() {
	d.cast.Close()
}

// Run performs the configured number of operations and returns a report.
// Run stops early if ctx is done, if the tree disagrees with the reference
// map, or if an invariant check fails. In these cases the report covers the
// operations up to the failure.
func (d *Driver) Run(ctx context.Context) (Report, error) {
	var err error
	step := 0
	for ; step < d.cfg.Operations; step++ {
		if err = ctx.Err(); err != nil {
			break
		}
		var ev Event
		if ev, err = d.step(step); err != nil {
			break
		}
		d.cast.Pub(ev)
		if (step+1)%d.cfg.CheckEvery == 0 {
			d.report.Checks++
			if err = d.tree.Check(); err != nil {
				break
			}
		}
	}
	if err == nil {
		d.report.Checks++
		err = d.tree.Check()
	}
	d.report.Size = d.tree.Size()
	d.report.Rank = d.tree.Rank()
	d.cast.Pub(Event{Step: step, Size: d.tree.Size(), Err: err, Done: true})
	if err != nil {
		tracer().Errorf("stress: run stopped at step %d: %v", step, err)
	} else {
		tracer().Infof("stress: %s", d.report)
	}
	return d.report, err
}

func (d *Driver) pick() Op {
	w := d.cfg.Weights
	r := d.rnd.Intn(w.total())
	for _, c := range []struct {
		op     Op
		weight int
	}{{OpInsert, w.Insert}, {OpDelete, w.Delete}, {OpSearch, w.Search}, {OpQuery, w.Query}} {
		if r < c.weight {
			return c.op
		}
		r -= c.weight
	}
	return OpSplitJoin
}

func (d *Driver) step(step int) (Event, error) {
	op := d.pick()
	d.report.Operations++
	d.report.Counts[op]++
	ev := Event{Step: step, Op: op}
	key := 1 + d.rnd.Intn(d.cfg.KeyRange)
	_, present := d.model[key]
	var err error
	switch op {
	case OpInsert:
		ev.Key = key
		value := strconv.Itoa(key)
		ev.Steps, ev.Err = d.tree.Insert(key, value)
		if present != errors.Is(ev.Err, avl.ErrDuplicateKey) {
			err = fmt.Errorf("%w: insert %d (present=%v) returned %v", ErrDiverged, key, present, ev.Err)
		}
		if !present {
			d.model[key] = value
		}
	case OpDelete:
		ev.Key = key
		ev.Steps, ev.Err = d.tree.Delete(key)
		if present == (ev.Err != nil) {
			err = fmt.Errorf("%w: delete %d (present=%v) returned %v", ErrDiverged, key, present, ev.Err)
		}
		delete(d.model, key)
	case OpSearch:
		ev.Key = key
		var v string
		v, ev.Err = d.tree.Search(key)
		if present && v != d.model[key] || present != (ev.Err == nil) {
			err = fmt.Errorf("%w: search %d found %q, %v", ErrDiverged, key, v, ev.Err)
		}
	case OpQuery:
		err = d.query()
	case OpSplitJoin:
		ev.Key = key
		if !present {
			ev.Err = avl.ErrKeyNotFound
			break
		}
		if ev.Steps, err = d.splitJoin(key); err == nil {
			d.report.JoinCost += ev.Steps
		}
	}
	if ev.Err != nil {
		d.report.Misses++
	} else if op == OpInsert || op == OpDelete {
		d.report.Rebalancing += ev.Steps
	}
	if r := d.tree.Rank(); r > d.report.MaxRank {
		d.report.MaxRank = r
	}
	ev.Size = d.tree.Size()
	tracer().Debugf("stress: #%d %s %d: %d steps, size %d", step, op, ev.Key, ev.Steps, ev.Size)
	if err == nil && d.tree.Size() != len(d.model) {
		err = fmt.Errorf("%w: tree has %d entries, reference has %d", ErrDiverged, d.tree.Size(), len(d.model))
	}
	return ev, err
}

// query compares the ordered views of the tree with the reference map.
func (d *Driver) query() error {
	keys := make([]int, 0, len(d.model))
	for k := range d.model {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	if got := d.tree.Keys(); !slices.Equal(got, keys) {
		return fmt.Errorf("%w: keys %v, expected %v", ErrDiverged, got, keys)
	}
	values := d.tree.Values()
	for i, k := range keys {
		if values[i] != d.model[k] {
			return fmt.Errorf("%w: value of %d is %q", ErrDiverged, k, values[i])
		}
	}
	if len(keys) == 0 {
		if _, err := d.tree.Min(); !errors.Is(err, avl.ErrEmptyTree) {
			return fmt.Errorf("%w: min of empty tree returned %v", ErrDiverged, err)
		}
		return nil
	}
	lo, _ := d.tree.Min()
	hi, _ := d.tree.Max()
	if lo != d.model[keys[0]] || hi != d.model[keys[len(keys)-1]] {
		return fmt.Errorf("%w: min/max are %q/%q", ErrDiverged, lo, hi)
	}
	if root, err := d.tree.Root(); err != nil || root.Size() != len(keys) {
		return fmt.Errorf("%w: root does not cover all entries", ErrDiverged)
	}
	return nil
}

// splitJoin splits the tree at key and joins the halves again. It returns
// the join cost.
func (d *Driver) splitJoin(key int) (int, error) {
	value := d.model[key]
	small, big, err := d.tree.Split(key)
	if err != nil {
		return -1, fmt.Errorf("%w: split at present key %d: %v", ErrDiverged, key, err)
	}
	if k, err := small.MaxKey(); err == nil && k >= key {
		return -1, fmt.Errorf("%w: split at %d leaves %d in lower half", ErrDiverged, key, k)
	}
	if k, err := big.MinKey(); err == nil && k <= key {
		return -1, fmt.Errorf("%w: split at %d leaves %d in upper half", ErrDiverged, key, k)
	}
	cost, err := small.Join(key, value, big)
	if err != nil {
		return -1, fmt.Errorf("%w: join at %d: %v", ErrDiverged, key, err)
	}
	d.tree = small
	return cost, nil
}
