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

// Package fileupload provides the form components backed by the file requirement engine.
//
// Both components classify the file types of their content against the passport
// and differ only in how uploads are associated with file types:
//
// - FileUploadAndLabel: users tag every upload with one or more file types;
// submission is blocked until every required file type has an upload
// - MultipleFileUpload: uploads are collected without tags under a single fn
//
// Each component is registered with the Registry. Components are created from
// flow node content, for example:
//
//	{
//	  "type": "FileUploadAndLabel",
//	  "content": {
//	    "title": "Upload and label",
//	    "fileTypes": [
//	      {"name": "Site plan", "fn": "sitePlan", "rule": {"condition": "AlwaysRequired"}},
//	      {"name": "Roof plan", "fn": "roofPlan",
//	       "rule": {"condition": "RequiredIf", "fn": "proposal.projectType", "operator": "Equals", "val": "alter.roof"}}
//	    ]
//	  }
//	}
//
// Component methods never modify the State they are given; they return a new one.
package fileupload
