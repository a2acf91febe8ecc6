/*
Package operation runs publish commands for one or more documents.

Each document goes through its own shared-then-archive pipeline. The Runner
only decides whether documents are handled one after another or several at a
time; it never reorders the stages inside a document and does not coordinate
writes to a common SHARED folder.
*/
package operation
