// Package framelog extracts frame timestamps from VIO subsystem text logs.
//
// A frame line carries its capture time anywhere in the line, in the form
//
//	timestamp: 4185460044500 ns
//
// Every other line is ignored. Use OpenFile to get a Scanner over a log on
// disk:
//
//	s, f, err := framelog.OpenFile(path, logger)
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	for {
//	    ts, err := s.Next(ctx)
//	    if err == io.EOF {
//	        break
//	    }
//	    // use ts
//	}
package framelog
