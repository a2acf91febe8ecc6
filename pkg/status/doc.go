/*
Package status owns the file system side of a publish.

	+-------------+       +-------------+
	|   publish   | ----> |   status    |
	|   (plan)    |       | (dirs/copy) |
	+-------------+       +-------------+

🎯 Purpose:
- Ensures destination directories exist
- Copies files through a temp file and rename so a failed copy keeps the old destination
- Reports whether a destination was new, modified or unchanged

📝 Paths handed to the Manager are used as-is. The publish package builds
them with the separator of the source path so that host paths round-trip
exactly.
*/
package status
