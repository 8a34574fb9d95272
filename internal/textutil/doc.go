// Package textutil provides the text heuristics behind project grouping:
// canonical base names, edit-distance similarity, and display-name cleanup.
//
// BaseName reduces a filename to the project name it most likely belongs
// to by stripping the extension, one trailing mix-state or version suffix,
// and bare trailing version numbers. Similarity scores two strings in
// [0, 1] via normalized Levenshtein distance. Both are pure and
// deterministic; callers own case folding.
package textutil
