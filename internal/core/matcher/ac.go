package matcher

// Byte-level Aho-Corasick over folded UTF-8. Every node keeps a full
// 256-way table; link() completes missing edges through the failure
// function so a scan is one table lookup per input byte

const none int32 = -1

type node struct {
	next [256]int32
	fail int32
	out  []int32 // pattern ids ending here, failure chain included
}

type trie struct {
	nodes []node
}

func newNode() node {
	var n node
	for i := range n.next {
		n.next[i] = none
	}
	return n
}

func newTrie() *trie {
	return &trie{nodes: []node{newNode()}}
}

// insert adds pat under id; empty patterns are ignored
func (t *trie) insert(pat string, id int32) {
	if pat == "" {
		return
	}
	s := int32(0)
	for i := 0; i < len(pat); i++ {
		b := pat[i]
		nxt := t.nodes[s].next[b]
		if nxt == none {
			nxt = int32(len(t.nodes))
			t.nodes[s].next[b] = nxt
			t.nodes = append(t.nodes, newNode())
		}
		s = nxt
	}
	t.nodes[s].out = append(t.nodes[s].out, id)
}

// link computes failure links breadth first and turns the trie into a DFA
func (t *trie) link() {
	q := make([]int32, 0, len(t.nodes))

	root := &t.nodes[0]
	for b := range 256 {
		s := root.next[b]
		if s == none {
			root.next[b] = 0
			continue
		}
		t.nodes[s].fail = 0
		q = append(q, s)
	}

	for qi := 0; qi < len(q); qi++ {
		r := q[qi]
		f := t.nodes[r].fail
		for b := range 256 {
			s := t.nodes[r].next[b]
			if s == none {
				// shallower states are already complete
				t.nodes[r].next[b] = t.nodes[f].next[b]
				continue
			}
			sf := t.nodes[f].next[b]
			t.nodes[s].fail = sf
			if len(t.nodes[sf].out) > 0 {
				t.nodes[s].out = append(t.nodes[s].out, t.nodes[sf].out...)
			}
			q = append(q, s)
		}
	}
}

// walk feeds text through the DFA and calls fn(end, id) for every pattern
// ending at byte offset end. Returning false from fn stops the walk
func (t *trie) walk(text string, fn func(end int, id int32) bool) {
	s := int32(0)
	for i := 0; i < len(text); i++ {
		s = t.nodes[s].next[text[i]]
		for _, id := range t.nodes[s].out {
			if !fn(i+1, id) {
				return
			}
		}
	}
}
