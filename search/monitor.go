package search

import "github.com/poiesic/recall/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query Query)
	AfterEmbedding(vector []float32)
	AfterVectorSearch(results []*core.SearchResult)
	AfterLexicalSearch(results []*core.SearchResult)
	Degraded(reason string)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ Query)                             {}
func (n *noopMonitor) AfterEmbedding(_ []float32)                {}
func (n *noopMonitor) AfterVectorSearch(_ []*core.SearchResult)  {}
func (n *noopMonitor) AfterLexicalSearch(_ []*core.SearchResult) {}
func (n *noopMonitor) Degraded(_ string)                         {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)             {}
