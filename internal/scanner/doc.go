// Package scanner walks a project tree and yields the files whose words
// should be checked.
//
// The walk is deterministic: inside every directory the files are yielded
// first, ordered case-insensitively, and then the subdirectories are
// visited in the same order. Version-control metadata (.git, .svn) is never
// entered, and an Excluder can prune whole subtrees.
//
// Files returns a lazy iter.Seq; the tree is read while the sequence is
// ranged over and re-read on every new range.
//
//	seq, err := scanner.Files(scanner.Options{
//	    Root:       "src",
//	    Extensions: config.DefaultExtensions,
//	    Recursive:  true,
//	})
//	if err != nil {
//	    return err
//	}
//	for f := range seq {
//	    fmt.Println(f.Rel)
//	}
package scanner
