package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/c-kruse/listidx/counts"
	"github.com/c-kruse/listidx/dense"
	"github.com/c-kruse/listidx/elements"
	"github.com/c-kruse/listidx/indexmap"
	"github.com/c-kruse/listidx/inverse"
)

type VocabOutput struct {
	Vocabulary  []string       `json:"vocabulary"`
	IDs         map[string]int `json:"ids"`
	Frequencies map[string]int `json:"frequencies"`
	Encoded     []int          `json:"encoded"`
	Unique      bool           `json:"unique"`
}

type RemoveOutput struct {
	Remaining []json.RawMessage `json:"remaining"`
	Removed   []json.RawMessage `json:"removed"`
}

type Operation struct {
	Op    string          `json:"op"`
	Index int             `json:"index"`
	Value json.RawMessage `json:"value,omitempty"`
}

type ApplyOutput struct {
	Keys    []int             `json:"keys"`
	Entries []json.RawMessage `json:"entries"`
}

func readTokens(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var tokens []string
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	return tokens, scanner.Err()
}

func writeJSON(w io.Writer, obj any) error {
	enc := json.NewEncoder(w)
	return enc.Encode(obj)
}

func vocab(r io.Reader, w io.Writer) error {
	tokens, err := readTokens(r)
	if err != nil {
		return fmt.Errorf("error reading tokens: %w", err)
	}
	out := VocabOutput{
		Vocabulary:  elements.Dedup(tokens),
		Frequencies: make(map[string]int),
		Encoded:     make([]int, len(tokens)),
		Unique:      elements.Unique(tokens),
	}
	out.IDs, err = inverse.IndexOf(out.Vocabulary)
	if err != nil {
		return fmt.Errorf("error indexing vocabulary: %w", err)
	}
	for i, tok := range tokens {
		counts.Increment(out.Frequencies, tok, 1)
		out.Encoded[i] = out.IDs[tok]
	}
	slog.Debug("built vocabulary", slog.Int("tokens", len(tokens)), slog.Int("types", len(out.Vocabulary)))
	return writeJSON(w, out)
}

func postings(r io.Reader, w io.Writer, kind string) error {
	tokens, err := readTokens(r)
	if err != nil {
		return fmt.Errorf("error reading tokens: %w", err)
	}
	var out map[string][]int
	switch kind {
	case "list":
		out, err = collect(tokens, inverse.NewList)
	case "set":
		out, err = collect(tokens, inverse.NewSet)
	case "sorted":
		out, err = collect(tokens, inverse.NewSorted)
	default:
		return fmt.Errorf("unknown positions collection %q", kind)
	}
	if err != nil {
		return err
	}
	return writeJSON(w, out)
}

func collect[C inverse.Collection](tokens []string, newCollection func() C) (map[string][]int, error) {
	index, err := inverse.Positions(tokens, newCollection)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]int, len(index))
	for tok, positions := range index {
		out[tok] = positions.Positions()
	}
	return out, nil
}

func denseArray(r io.Reader, w io.Writer, filler string) error {
	var raw map[string]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return fmt.Errorf("error decoding index object: %w", err)
	}
	byIndex := make(map[int]string, len(raw))
	for k, v := range raw {
		i, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("error parsing index %q: %w", k, err)
		}
		byIndex[i] = v
	}
	out, err := dense.FromIndexMapFill(byIndex, filler)
	if err != nil {
		return err
	}
	return writeJSON(w, out)
}

func parseIndices(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	indices := make([]int, len(parts))
	for i, part := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("error parsing index %q: %w", part, err)
		}
		indices[i] = idx
	}
	return indices, nil
}

func remove(r io.Reader, w io.Writer, indices string, ordering string) error {
	var seq []json.RawMessage
	if err := json.NewDecoder(r).Decode(&seq); err != nil {
		return fmt.Errorf("error decoding array: %w", err)
	}
	positions, err := parseIndices(indices)
	if err != nil {
		return err
	}
	var out RemoveOutput
	switch ordering {
	case "none":
		out.Remaining, out.Removed, err = dense.RemoveIndices(seq, positions)
	case "asc":
		out.Remaining, out.Removed, err = dense.RemoveSorted(seq, positions, dense.Ascending)
	case "desc":
		out.Remaining, out.Removed, err = dense.RemoveSorted(seq, positions, dense.Descending)
	default:
		return fmt.Errorf("unknown ordering %q", ordering)
	}
	if err != nil {
		return err
	}
	return writeJSON(w, out)
}

func apply(r io.Reader, w io.Writer) error {
	m, err := indexmap.New[json.RawMessage](nil)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(r)
	for line := 1; ; line++ {
		var op Operation
		err := dec.Decode(&op)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("error decoding operation %d: %w", line, err)
		}
		switch op.Op {
		case "put":
			_, _, err = m.Put(op.Index, op.Value)
		case "remove":
			_, _, err = m.Remove(op.Index)
		default:
			err = fmt.Errorf("unknown op %q", op.Op)
		}
		if err != nil {
			return fmt.Errorf("operation %d: %w", line, err)
		}
	}
	if err := m.Verify(); err != nil {
		return err
	}
	return writeJSON(w, ApplyOutput{Keys: m.Keys(), Entries: m.Values()})
}
