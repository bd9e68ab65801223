// Package internal provides the core functionality of the phpmod rewrite tool.
//
// This package implements the engine that drives the modernization process:
// it parses PHP sources, runs the rewrite rules against them, and collects
// the resulting issues together with their suggested replacements.
//
// Key components:
//
// Engine: The main rewrite engine. It holds the rule set configured for one
// target minimum PHP version and applies it to the given source files.
//
// RewriteRule: An interface that defines the contract for all rewrite rules.
// Each rule must implement the Check method to analyze the code and return issues.
//
// Cache: A per-file result cache keyed by content hash, invalidated when the
// source or the configuration changes.
//
// SourceCode: A simple structure to represent the content of a source file as
// a collection of lines.
//
// Watcher: Re-runs the engine on PHP files as they change on disk.
//
// Usage:
//
//	engine, err := internal.NewEngine(80000, nil)
//	if err != nil {
//	    // handle error
//	}
//
//	issues, err := engine.Run("path/to/file.php")
//	if err != nil {
//	    // handle error
//	}
//
//	// Process the found issues
//	for _, issue := range issues {
//	    fmt.Printf("Found issue: %s at %s\n", issue.Message, issue.Start)
//	}
//
// This package is intended for internal use within the phpmod tool and should
// not be imported by external packages.
package internal
