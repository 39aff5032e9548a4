package localize

import (
	dbgerrors "github.com/uber/dbgbroker/src/dbgbroker/internal/errors"
	"golang.org/x/text/language"
)

var _supported = []language.Tag{language.English, language.German}

var _messages = map[language.Tag]map[string]string{
	language.English: {
		dbgerrors.KeyOnlyLaunchSupported:  "'cmake' debug type only supports the 'launch' request.",
		dbgerrors.KeyMustDefineDebugType:  "The 'cmake' debug type requires you to define the 'cmakeDebugType'. Available options are 'configure', 'external', and 'script'.",
		dbgerrors.KeyScriptRequiresPath:   "The 'cmake' debug type with 'cmakeDebugType' set to 'script' requires you to define 'scriptPath'.",
		dbgerrors.KeyExternalRequiresPipe: "The 'cmake' debug type with 'cmakeDebugType' set to 'external' requires you to define 'pipeName'.",
		dbgerrors.KeyDebuggerNotReady:     "CMake exited before the debugger was ready. Check the CMake output for errors.",
		dbgerrors.KeyVersionUnsupported:   "CMake %[1]s does not support debugging. Version %[2]s or newer is required.",
		KeyCreateDescriptor:               "Connecting debugger on named pipe: \"%[1]s\"",
	},
	language.German: {
		dbgerrors.KeyOnlyLaunchSupported:  "Der Debugtyp 'cmake' unterstützt nur die Anforderung 'launch'.",
		dbgerrors.KeyMustDefineDebugType:  "Für den Debugtyp 'cmake' muss 'cmakeDebugType' definiert werden. Verfügbare Optionen sind 'configure', 'external' und 'script'.",
		dbgerrors.KeyScriptRequiresPath:   "Für den Debugtyp 'cmake' mit 'cmakeDebugType' = 'script' muss 'scriptPath' definiert werden.",
		dbgerrors.KeyExternalRequiresPipe: "Für den Debugtyp 'cmake' mit 'cmakeDebugType' = 'external' muss 'pipeName' definiert werden.",
		dbgerrors.KeyDebuggerNotReady:     "CMake wurde beendet, bevor der Debugger bereit war. Prüfen Sie die CMake-Ausgabe auf Fehler.",
		dbgerrors.KeyVersionUnsupported:   "CMake %[1]s unterstützt kein Debugging. Version %[2]s oder neuer ist erforderlich.",
		KeyCreateDescriptor:               "Debugger wird über Named Pipe verbunden: \"%[1]s\"",
	},
}
