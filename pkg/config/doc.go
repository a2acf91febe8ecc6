/*
Package config loads the add-in manifest for sharedfile.

	            +-------------+
	            |   Config    |
	            | (Manifest)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   HCL    | |   YAML   | |   JSON   |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Describes the ribbon tab, panel and button the add-in registers
- Sets the default log level

📝 The folder and file name tokens (_W0, 01_WIP, ARCHIVE, ...) are not
configurable. They live in the publish package.

🔍 Example (.sharedfile.hcl):

	ribbon {
	  tab   = "PI1"
	  panel = "Instruments"
	  button {
	    label = "${defaults.label} (beta)"
	  }
	}

	log {
	  level = "debug"
	}
*/
package config
