package compare

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/wodsaegh/cvg-judge/document"
)

// Similarity estimates how close a rejected submission comes to the
// solution. The structural score is the longest-common-subsequence ratio
// of the two tag sequences in document order; the style score is the
// Jaccard index of the class-name sets. When neither document embeds a
// stylesheet the style score is 1.
func Similarity(solutionSrc, submissionSrc string) (structural, style float64) {
	if document.IsEmpty(submissionSrc) {
		return 0, 0
	}
	sol, err := document.Parse(solutionSrc)
	if err != nil {
		return 0, 0
	}
	sub, err := document.Parse(submissionSrc)
	if err != nil {
		return 0, 0
	}
	structural = sequenceRatio(tagSequence(sol.Root()), tagSequence(sub.Root()))
	if !strings.Contains(solutionSrc, "<style") && !strings.Contains(submissionSrc, "<style") {
		return structural, 1
	}
	return structural, jaccard(classSet(sol.Root()), classSet(sub.Root()))
}

func tagSequence(root *html.Node) []string {
	var tags []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			tags = append(tags, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return tags
}

func classSet(root *html.Node) map[string]bool {
	classes := make(map[string]bool)
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, name := range strings.Fields(document.Attrs(n)["class"]) {
				classes[name] = true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return classes
}

// sequenceRatio is 2*LCS/(len(a)+len(b)), the difflib ratio over whole
// tags instead of characters.
func sequenceRatio(a, b []string) float64 {
	if len(a)+len(b) == 0 {
		return 1
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return 2 * float64(prev[len(b)]) / float64(len(a)+len(b))
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	inter := 0
	for name := range a {
		if b[name] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
