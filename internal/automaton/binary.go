package automaton

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sort"
)

// MarshalBinary implements encoding.BinaryMarshaler. The wire format is a
// flat, length-prefixed encoding of start state, state count and ids, final
// states (with their tags), and edges; the alphabet is not written
// separately, since it is implied by the edges.
// Unlike the text dump, pattern tags survive the round trip, so this is the
// form used by the report package's binary persistence (built on
// github.com/dekarrin/rezi), the same library and BinaryMarshaler/
// Unmarshaler pairing the teacher uses to persist game state in its sqlite
// DAO layer.
func (a *Automaton) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer

	writeUint := func(v uint64) {
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], v)
		buf.Write(tmp[:])
	}
	writeString := func(s string) {
		writeUint(uint64(len(s)))
		buf.WriteString(s)
	}

	writeUint(uint64(a.Start))

	states := a.States()
	writeUint(uint64(len(states)))
	for _, s := range states {
		writeUint(uint64(s))
	}

	accKeys := make([]int, 0, len(a.Accept))
	for s := range a.Accept {
		accKeys = append(accKeys, int(s))
	}
	sort.Ints(accKeys)
	writeUint(uint64(len(accKeys)))
	for _, s := range accKeys {
		tag := a.Accept[StateID(s)]
		writeUint(uint64(s))
		writeString(tag.Name)
		writeUint(uint64(tag.Index))
	}

	type edge struct {
		src StateID
		sym byte
		dst StateID
	}
	var edges []edge
	for src, bySym := range a.Transitions {
		for sym, dsts := range bySym {
			for dst := range dsts {
				edges = append(edges, edge{src, sym, dst})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].src != edges[j].src {
			return edges[i].src < edges[j].src
		}
		if edges[i].sym != edges[j].sym {
			return edges[i].sym < edges[j].sym
		}
		return edges[i].dst < edges[j].dst
	})
	writeUint(uint64(len(edges)))
	for _, e := range edges {
		writeUint(uint64(e.src))
		buf.WriteByte(e.sym)
		writeUint(uint64(e.dst))
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, the inverse of
// MarshalBinary.
func (a *Automaton) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)

	readUint := func(what string) (uint64, error) {
		var tmp [8]byte
		if _, err := io.ReadFull(r, tmp[:]); err != nil {
			return 0, fmt.Errorf("automaton: reading %s: %w", what, err)
		}
		return binary.BigEndian.Uint64(tmp[:]), nil
	}
	readString := func(what string) (string, error) {
		n, err := readUint(what + " length")
		if err != nil {
			return "", err
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", fmt.Errorf("automaton: reading %s: %w", what, err)
		}
		return string(buf), nil
	}

	start, err := readUint("start state")
	if err != nil {
		return err
	}

	*a = *New(StateID(start))

	numStates, err := readUint("state count")
	if err != nil {
		return err
	}
	for i := uint64(0); i < numStates; i++ {
		s, err := readUint("state id")
		if err != nil {
			return err
		}
		a.AddState(StateID(s))
	}

	numAccept, err := readUint("accept count")
	if err != nil {
		return err
	}
	for i := uint64(0); i < numAccept; i++ {
		s, err := readUint("accept state id")
		if err != nil {
			return err
		}
		name, err := readString("accept tag name")
		if err != nil {
			return err
		}
		idx, err := readUint("accept tag index")
		if err != nil {
			return err
		}
		a.SetAccept(StateID(s), PatternTag{Name: name, Index: int(idx)})
	}

	numEdges, err := readUint("edge count")
	if err != nil {
		return err
	}
	for i := uint64(0); i < numEdges; i++ {
		src, err := readUint("edge source")
		if err != nil {
			return err
		}
		sym, err := r.ReadByte()
		if err != nil {
			return fmt.Errorf("automaton: reading edge symbol: %w", err)
		}
		dst, err := readUint("edge destination")
		if err != nil {
			return err
		}
		a.AddTransition(StateID(src), sym, StateID(dst))
	}

	return nil
}
