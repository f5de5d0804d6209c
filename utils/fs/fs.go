/*
 * Copyright 2025 The PlanX Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LoadFile 加载文件，文件不存在或读取失败返回 nil
func LoadFile(filePath string) []byte {
	buf, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	} else {
		return buf
	}
}

// GetFilePaths 返回匹配的文件路径列表
func GetFilePaths(loadFilePattern string, excludedPatterns ...string) ([]string, error) {
	// 分割输入参数为目录和文件名
	dir, file := filepath.Split(loadFilePattern)
	if dir == "" {
		dir = "."
	}
	return walk(dir, func(d fs.DirEntry) bool {
		matched, _ := filepath.Match(file, d.Name())
		return matched
	}, excludedPatterns...)
}

// GetFilePathsByExt 返回目录及其子目录下指定扩展名的文件路径列表，扩展名不区分大小写
// GetFilePathsByExt walks dir and returns the files whose extension is one of exts, e.g. ".json".
func GetFilePathsByExt(dir string, exts ...string) ([]string, error) {
	return walk(dir, func(d fs.DirEntry) bool {
		ext := filepath.Ext(d.Name())
		for _, item := range exts {
			if strings.EqualFold(ext, item) {
				return true
			}
		}
		return false
	})
}

func walk(dir string, match func(d fs.DirEntry) bool, excludedPatterns ...string) ([]string, error) {
	var paths []string
	// 遍历目录
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			if match(d) && !isMatch(d, excludedPatterns...) {
				paths = append(paths, path)
			}
			return nil
		}
		if path != dir && isMatch(d, excludedPatterns...) {
			return filepath.SkipDir // 跳过该子目录
		}
		return nil
	})
	return paths, err
}

func isMatch(d fs.DirEntry, patterns ...string) bool {
	for _, item := range patterns {
		if matched, _ := filepath.Match(item, d.Name()); matched {
			return true
		}
	}
	return false
}
