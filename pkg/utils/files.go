package utils

import "path/filepath"

// GetPathInfo resolves a source path passed on the command line (possibly
// relative) to an absolute path plus its containing directory. The cmm
// driver uses parentDir to place a source file's default
// ".unparsed.cmm" output alongside it when no -o/--output flag is given.
func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	// Get the directory containing the file
	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}
