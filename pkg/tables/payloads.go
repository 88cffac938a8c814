package tables

// Candidate pattern pools for the injection-family transformations. The
// outputs these feed are adversarial test payloads, not well-formed
// documents; selection over every pool is uniform.

// SQLComments are the comment tokens spliced between words by
// sql_comment_injection.
var SQLComments = []string{"--", "/**/", "#", "-- -"}

// ShellSeparators are the command separators used by command_injection.
var ShellSeparators = []string{";", "|", "||", "&&", "&", "`", "$()"}

// Traversals are the directory-escape sequences used by path_traversal.
var Traversals = []string{"../", "..\\", "....//", "..../\\", "%2e%2e/", "%2e%2e\\"}

// NullBytes are the textual representations of a null byte used by
// null_byte_injection.
var NullBytes = []string{"%00", "\\0", "\\x00", "&#00;"}

// MongoOperators are operator fragments spliced into input by
// mongodb_injection.
var MongoOperators = []string{
	`"$ne": null`, `"$gt": ""`, `"$regex": ".*"`, `"$where": "1"`,
	`"$exists": true`, `"$nin": []`,
}

// CouchSelectors are Mango-style selector fragments for couchdb_injection.
var CouchSelectors = []string{
	`"selector": {"_id": {"$gt": null}}`, `"$or": [{}, {}]`,
	`"_all_docs": true`, `"$elemMatch": {}`,
}

// DynamoExpressions are expression fragments for dynamodb_obfuscate.
var DynamoExpressions = []string{
	"attribute_exists(#k)", "attribute_not_exists(#k)",
	"begins_with(#k, :v)", "contains(#k, :v)", "size(#k) > :v",
}

// NoSQLOperators is the generic operator pool for nosql_operator_injection.
var NoSQLOperators = []string{"$ne", "$gt", "$lt", "$gte", "$lte", "$in", "$nin", "$or", "$and", "$not", "$regex"}

// SSTIProbes are generic template-evaluation probes appended or wrapped by
// ssti_injection.
var SSTIProbes = []string{
	"{{7*7}}", "${7*7}", "<%= 7*7 %>", "#{7*7}", "{{7*'7'}}", "*{7*7}",
}

// SSTIFrameworks maps a framework selector to its delimiter pool. An
// unknown selector is an explicit error, never a silent default.
var SSTIFrameworks = map[string][][2]string{
	"jinja2":     {{"{{", "}}"}, {"{%", "%}"}, {"{#", "#}"}},
	"twig":       {{"{{", "}}"}, {"{%", "%}"}, {"{{_self.env", "}}"}},
	"freemarker": {{"${", "}"}, {"<#assign x=", ">"}, {"#{", "}"}},
	"velocity":   {{"${", "}"}, {"#set($x=", ")"}, {"#{", "}"}},
	"erb":        {{"<%=", "%>"}, {"<%", "%>"}, {"<%-", "-%>"}},
	"tornado":    {{"{{", "}}"}, {"{%", "%}"}, {"{#", "#}"}},
}

// JWTAlgorithms is the pool used by jwt_algorithm_confusion: downgrade and
// cross-family targets that confuse lax verifiers.
var JWTAlgorithms = []string{"none", "None", "NONE", "HS256", "RS256", "ES256", "HS384"}

// GraphQLIntrospectionFields are the field spellings used when mutating
// introspection queries.
var GraphQLIntrospectionFields = []string{"__schema", "__type", "__typename", "__Schema", "__SCHEMA"}

// HTMLInputTypes is the pool of interchangeable input type attributes used
// by html_input_type_variation.
var HTMLInputTypes = []string{"text", "search", "tel", "url", "email", "hidden"}
