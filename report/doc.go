/*
Package report defines the shared error taxonomy of the validation engine.

Every stage of the engine (delimiter scan, tag validation, structural
comparison) produces positioned error records drawn from a closed set of
message codes. Records carry interpolation parameters and a 1-based
line/column, or report.NoPosition when no source position applies. Fatal
records abort the producing pass; warnings never abort and are surfaced only
when a document is otherwise free of fatal errors.

Stages that benefit from reporting several independent causes at once (the
delimiter scanner) collect records into a List, which is itself an error.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package report
