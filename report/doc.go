// Package report renders dataset statistics, frequent itemsets and scored
// rules as markdown tables. Rendering is plain text on purpose: the tables
// read fine in a terminal and paste cleanly into notebooks and READMEs.
// Charts and graph plots are out of scope.
package report
