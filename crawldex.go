// Package crawldex crawls a website depth-first from a single seed URL and
// builds an inverted index of the visible text it finds along the way.
// Pages are vertices and hyperlinks are directed edges of an implicit graph;
// the graph is discovered lazily, one fetch at a time, and a hard cap on the
// crawl frontier bounds how much of it a single run may ever admit.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, snowball/, sqlite/);
// traversal and indexing orchestration lives in crawl/ and index/.
package crawldex
