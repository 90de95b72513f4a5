// Package logger provides the leveled, colorized console logger.
//
// # Levels
//
// A Logger holds a threshold between 0 and 3. Each method is emitted only
// when the threshold is at or below its own level:
//
//	Logger.Log()     // level 0, grey
//	Logger.Info()    // level <= 1, cyan
//	Logger.Warn()    // level <= 2, yellow
//	Logger.Error()   // always, red
//	Logger.Inverse() // always, grey on white
//
// # Formatting
//
// Called with a single argument, a method treats it as the message and
// renders it through the logger's default format (initially "%s"). With
// more arguments the first one is the format string:
//
//	log.Info("ready")                       // Sprintf(log.Format(), "ready")
//	log.Info("%d files in %s", n, dir)      // Sprintf("%d files in %s", n, dir)
//
// # Usage
//
//	log, err := logger.New(logger.Options{Level: logger.LevelPtr(logger.LevelWarn)})
//	log.Warn("hi")  // printed
//	log.Info("hi")  // suppressed
//
// Commands create the logger in their PersistentPreRun and share it.
package logger
