package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	var testCases = []struct {
		description string
		file        *File
		platform    string
		family      Family
		expectRole  Role
		expectObj   string
	}{
		{
			description: "header",
			file:        &File{Path: "/ws/src/yield/fs/file.h", Language: LanguageCXX, Platform: "*", RootDir: "/ws/src/yield/fs"},
			platform:    "win32",
			expectRole:  RoleHeader,
		},
		{
			description: "header never excluded",
			file:        &File{Path: "/ws/src/yield/fs/posix/file.hpp", Language: LanguageCXX, Platform: "posix", Excluded: true, RootDir: "/ws/src/yield/fs"},
			platform:    "win32",
			expectRole:  RoleHeader,
		},
		{
			description: "source for other platform",
			file:        &File{Path: "/ws/src/yield/fs/file.cpp", Language: LanguageCXX, Platform: "mac", RootDir: "/ws/src/yield/fs"},
			platform:    "win32",
			expectRole:  RoleExcluded,
		},
		{
			description: "source in root dir",
			file:        &File{Path: "/ws/src/yield/fs/file.cpp", Language: LanguageCXX, Platform: "*", RootDir: "/ws/src/yield/fs"},
			platform:    "win32",
			expectRole:  RoleCompiled,
		},
		{
			description: "source in sub dir",
			file:        &File{Path: "/ws/src/yield/fs/win32/directory.cpp", Language: LanguageCXX, Platform: "win32", RootDir: "/ws/src/yield/fs"},
			platform:    "win32",
			expectRole:  RoleCompiled,
			expectObj:   `$(IntDir)win32\directory.obj`,
		},
		{
			description: "explicitly excluded",
			file:        &File{Path: "/ws/src/yield/fs/file.cpp", Language: LanguageCXX, Platform: "*", Excluded: true, RootDir: "/ws/src/yield/fs"},
			platform:    "win32",
			expectRole:  RoleExcluded,
		},
		{
			description: "c source",
			file:        &File{Path: "/ws/src/aio/aiocb.c", Language: LanguageC, Platform: "*", RootDir: "/ws/src"},
			platform:    "win32",
			expectRole:  RoleCompiled,
			expectObj:   `$(IntDir)aio\aiocb.obj`,
		},
		{
			description: "non native language",
			file:        &File{Path: "/ws/test/http/http_request_parser_test.py", Language: LanguageOther, Platform: "*", RootDir: "/ws/test"},
			platform:    "win32",
			expectRole:  RoleExcluded,
		},
		{
			description: "c source outside c++ only family",
			file:        &File{Path: "/ws/src/aio/aiocb.c", Language: LanguageC, Platform: "*", RootDir: "/ws/src"},
			platform:    "win32",
			family:      Family{LanguageCXX},
			expectRole:  RoleExcluded,
		},
		{
			description: "header outside family",
			file:        &File{Path: "/ws/src/aio/aiocb.h", Language: LanguageCXX, Platform: "*", RootDir: "/ws/src"},
			platform:    "win32",
			family:      Family{LanguageC},
			expectRole:  RoleHeader,
		},
		{
			description: "header extension on non native language",
			file:        &File{Path: "/ws/src/gen.h", Language: LanguageOther, Platform: "*", RootDir: "/ws/src"},
			platform:    "win32",
			expectRole:  RoleExcluded,
		},
	}

	for _, testCase := range testCases {
		family := testCase.family
		if family == nil {
			family = NativeFamily
		}
		role := Classify(testCase.file, testCase.platform, family)
		assert.Equal(t, testCase.expectRole, role, testCase.description)
		if role == RoleCompiled {
			assert.Equal(t, testCase.expectObj, testCase.file.ObjectFileName(), testCase.description)
		}
	}
}

func TestInferPlatform(t *testing.T) {
	var testCases = []struct {
		rel    string
		expect string
	}{
		{rel: "file.cpp", expect: "*"},
		{rel: "win32/directory.cpp", expect: "win32"},
		{rel: "poll/linux/epoller.cpp", expect: "linux"},
		{rel: "thread/darwin/processor_set.cpp", expect: "darwin"},
		{rel: "aio/net/sockets/aio_queue_test.hpp", expect: "*"},
		{rel: "win32.cpp", expect: "*"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, InferPlatform(testCase.rel, nil), testCase.rel)
	}
}

func TestInferLanguage(t *testing.T) {
	assert.Equal(t, LanguageC, InferLanguage("a/b.c"))
	assert.Equal(t, LanguageCXX, InferLanguage("a/b.CPP"))
	assert.Equal(t, LanguageCXX, InferLanguage("a/b.hpp"))
	assert.Equal(t, LanguageOther, InferLanguage("a/b.py"))
}
