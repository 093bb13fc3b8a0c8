// Package mapping parses and formats droplink mapping files.
//
// A mapping file is line oriented. After trimming surrounding whitespace a
// line is one of:
//
//	                                  blank, ignored
//	# comment                         ignored
//	~/.vimrc   =>   ~/Dropbox/.vimrc  mapping: link path => target path
//	         =>   ~/Dropbox/notes.txt mapping with no link, a no-op
//	anything else                     malformed
//
// The split happens at the first "=>"; whitespace around it is
// insignificant. Files are read with a Scanner so only the current line is
// held in memory.
package mapping
