/*
Package publish derives the shared and archive names of a project file and
copies it into place.

	source ──(stage 1)──> SHARED/<name>_S0.rvt ──(stage 2)──> SHARED/ARCHIVE/<date>_<name>_S0_(user)_<user>.rvt

🎯 Naming rules (literal, case-sensitive, every occurrence):
- file name:  _W0    -> _S0
- directory:  01_WIP -> 02_SHARED
- archive:    <YYYY-MM-DD>_<shared name without .rvt>_(user)_<user>.rvt in <shared dir>ARCHIVE<sep>

A rule that matches nothing leaves the name as it was. Derive records a
Warning for it instead of failing.

🔄 The archive copy is made from the shared copy (stage 1's artifact), not
from the source. Nothing is rolled back: if stage 2 fails the shared copy
stays updated.
*/
package publish
