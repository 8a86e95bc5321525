// Package xes reads event logs in the XES interchange format, reduced to
// what conformance checking needs: the ordered concept:name of every event.
//
// The reader understands the usual shape
//
//	<log>
//	  <trace>
//	    <event><string key="concept:name" value="register"/></event>
//	    ...
//	  </trace>
//	</log>
//
// and ignores everything else — extensions, classifiers, globals, timestamps,
// lifecycle attributes. Events without a concept:name are skipped. Activity
// names are interned through a trace.Alphabet so logs and process trees
// parsed with the same Alphabet share one id space.
package xes
