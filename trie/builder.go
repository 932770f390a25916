package trie

// frame records an open branch during the monotone build: everything
// inserted while the frame is open belongs to the right subtree of a future
// branch at frame.Bit whose left subtree is already complete.
type frame struct {
	Bit  uint8
	Left Ref
}

// branch is a node in postorder emission form, before layout assigns final
// array positions and parent refs.
type branch struct {
	bit   uint8
	left  Ref
	right Ref
}

// Build produces the flat index trie for a hash sequence sorted ascending.
// Descending the result by the bits of hashes[i] reaches Leaf(i).
//
// A hash equal to its predecessor is skipped: only the first position of an
// equal-hash run is referenced by the trie; the remaining positions of the
// run are unreachable by descent. This is the build-side face of the
// unresolved full-collision limitation described in doc.go.
//
// The ordering contract is caller-enforced; a descending step is reported
// as ErrOutOfOrderHash.
func Build(hashes []uint64) ([]Node, error) {
	n := uint64(len(hashes))
	if n == 0 {
		return nil, nil
	}
	if err := CheckEntryCount(n); err != nil {
		return nil, err
	}

	var (
		frames   []frame
		branches []branch
	)
	pending := Leaf(0)
	lastKey := hashes[0]

	emit := func(bit uint8, left, right Ref) Ref {
		branches = append(branches, branch{bit: bit, left: left, right: right})
		return Internal(uint32(len(branches) - 1))
	}

	for i := uint64(1); i < n; i++ {
		h := hashes[i]
		if h < lastKey {
			return nil, ErrOutOfOrderHash
		}
		l, ok := critBit(lastKey, h)
		if !ok {
			continue
		}

		// Close any frames that are now known complete.
		for len(frames) > 0 && frames[len(frames)-1].Bit > l {
			top := frames[len(frames)-1]
			frames = frames[:len(frames)-1]
			pending = emit(top.Bit, top.Left, pending)
		}

		// Open a new frame at l if we are descending deeper than the
		// current top. With strictly increasing keys the equal-bit case
		// cannot occur: a frame open at l means the pending subtree already
		// has bit l set, and a larger key first differing at l would need
		// it clear.
		if len(frames) == 0 || frames[len(frames)-1].Bit < l {
			frames = append(frames, frame{Bit: l, Left: pending})
		}

		// The new key is now the rightmost subtree.
		pending = Leaf(uint32(i))
		lastKey = h
	}

	for len(frames) > 0 {
		top := frames[len(frames)-1]
		frames = frames[:len(frames)-1]
		pending = emit(top.Bit, top.Left, pending)
	}

	return layout(branches, pending), nil
}

// layout reverses the postorder branch emission into a root-first node
// array. Children are emitted before their parent, so reversing places the
// root at index 0 and every internal child ref at a strictly larger index
// than the node holding it. That monotonicity is what bounds Descend.
func layout(branches []branch, root Ref) []Node {
	if root.IsLeaf() {
		// A bare-leaf root gets a sentinel node so descent always starts on
		// a node; both directions resolve to the same entry and the key
		// equality check at the leaf decides.
		return []Node{{Depth: 0, Left: root, Right: root, Parent: NoRef}}
	}

	m := uint32(len(branches))
	remap := func(r Ref) Ref {
		if r.IsLeaf() {
			return r
		}
		return Internal(m - 1 - r.Index())
	}

	nodes := make([]Node, m)
	for b, br := range branches {
		nodes[m-1-uint32(b)] = Node{
			Depth:  br.bit,
			Left:   remap(br.left),
			Right:  remap(br.right),
			Parent: NoRef,
		}
	}
	for i := range nodes {
		if l := nodes[i].Left; !l.IsLeaf() {
			nodes[l.Index()].Parent = Internal(uint32(i))
		}
		if r := nodes[i].Right; !r.IsLeaf() {
			nodes[r.Index()].Parent = Internal(uint32(i))
		}
	}
	return nodes
}
